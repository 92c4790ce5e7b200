// Package viewer serves stored files over local HTTP so share links can be
// opened in a browser. It only resolves ids stored in the same vault.
package viewer
