package store

import (
	"github.com/dmitrijs2005/memoryvault/internal/dbx"
	"github.com/dmitrijs2005/memoryvault/internal/vault/repositories/files"
	"github.com/dmitrijs2005/memoryvault/internal/vault/repositories/metadata"
	"github.com/dmitrijs2005/memoryvault/internal/vault/repositories/users"
)

func usersRepo(tx dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(tx)
}

func filesRepo(tx dbx.DBTX) files.Repository {
	return files.NewSQLiteRepository(tx)
}

func metadataRepo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}
