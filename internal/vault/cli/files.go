package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/filex"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
	"github.com/dustin/go-humanize"
)

const (
	viewsDir     = "views"
	downloadsDir = "downloads"
)

// Upload stores the file at path for the current user.
func (a *App) Upload(ctx context.Context, path string) error {
	f, err := a.uploadService.UploadFromPath(ctx, a.session, path)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Uploaded %s (%s) as %s", f.Name, humanize.IBytes(uint64(f.Size)), f.ID))
	return nil
}

// List prints the current user's files, newest first.
func (a *App) List(ctx context.Context) error {
	files, err := a.fileService.List(ctx, a.session)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		printlnFn("No files yet")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tSIZE\tUPLOADED")
	for _, f := range files {
		info := f.Info()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			info.ID, info.Name, info.MimeType, humanize.IBytes(uint64(info.Size)), humanize.Time(info.CreatedAt))
	}
	return tw.Flush()
}

// ownFile fetches id and hides files that belong to someone else.
func (a *App) ownFile(ctx context.Context, id string) (*models.File, error) {
	if !a.isLoggedIn() {
		return nil, common.ErrNotLoggedIn
	}
	f, err := a.fileService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.Owner != a.session.Email {
		return nil, fmt.Errorf("file %s: %w", id, common.ErrNotFound)
	}
	return f, nil
}

// View writes the payload under views/ so it can be opened locally.
func (a *App) View(ctx context.Context, id string) error {
	f, err := a.ownFile(ctx, id)
	if err != nil {
		return err
	}
	dir, err := filex.EnsureSubDir(a.exportBase, viewsDir)
	if err != nil {
		return err
	}
	path, err := filex.WriteExport(dir, f.ID+"_"+f.Name, f.Payload)
	if err != nil {
		return err
	}

	kind := "video"
	if f.IsImage() {
		kind = "image"
	}
	printlnFn(fmt.Sprintf("%s %s (%s) saved to %s", kind, f.Name, humanize.IBytes(uint64(f.Size)), path))
	return nil
}

// Download writes the payload under its stored name into dir, or into
// downloads/ when dir is empty.
func (a *App) Download(ctx context.Context, id, dir string) error {
	f, err := a.ownFile(ctx, id)
	if err != nil {
		return err
	}

	if dir == "" {
		dir, err = filex.EnsureSubDir(a.exportBase, downloadsDir)
	} else {
		dir, err = filex.EnsureSubDir(filepath.Dir(dir), filepath.Base(dir))
	}
	if err != nil {
		return err
	}

	path, err := filex.WriteExport(dir, f.Name, f.Payload)
	if err != nil {
		return err
	}
	printlnFn("Downloaded to", path)
	return nil
}

// Share prints the viewer link for id.
func (a *App) Share(ctx context.Context, id string) error {
	f, err := a.ownFile(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(a.fileService.ShareLink(f.ID))
	if a.viewerStop == nil {
		printlnFn("The link opens while the viewer runs, start it with 'serve'")
	}
	return nil
}

// Delete removes one of the current user's files.
func (a *App) Delete(ctx context.Context, id string) error {
	f, err := a.ownFile(ctx, id)
	if err != nil {
		return err
	}
	if err := a.fileService.Delete(ctx, f.ID); err != nil {
		return err
	}
	printlnFn("Deleted", f.Name)
	return nil
}

// Clear removes all of the current user's files after confirmation.
func (a *App) Clear(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNotLoggedIn
	}

	answer, err := getSimpleText(a.reader, "Delete ALL your files? Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.fileService.Clear(ctx, a.session); err != nil {
		return err
	}
	printlnFn("All files deleted")
	return nil
}
