package mandelpbm

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog is a store of rendered PBM images, deduplicated by content hash.
type Catalog struct {
	db *sql.DB
}

func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS render (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, pbm BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Add stores one PBM image. Identical content is stored once; the existing
// row id is returned for a duplicate.
func (c *Catalog) Add(width, height int, pbm []byte) (int64, error) {
	sum := sha1.Sum(pbm)
	sha := fmt.Sprintf("%X", sum[:])

	var id int64
	switch err := c.db.QueryRow("SELECT id FROM render WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := c.db.Exec("INSERT INTO render (sha1, width, height, pbm) VALUES (?, ?, ?, ?)", sha, width, height, pbm)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// RenderInfo describes one catalogued image.
type RenderInfo struct {
	ID            int64
	SHA1          string
	Width, Height int
}

// List returns every catalogued image, oldest first.
func (c *Catalog) List() ([]RenderInfo, error) {
	rows, err := c.db.Query("SELECT id, sha1, width, height FROM render ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []RenderInfo
	for rows.Next() {
		var info RenderInfo
		if err := rows.Scan(&info.ID, &info.SHA1, &info.Width, &info.Height); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	return infos, rows.Err()
}

// Find returns the stored PBM bytes for a content hash, or nil if there is no
// such image.
func (c *Catalog) Find(sha string) ([]byte, error) {
	var pbm []byte
	switch err := c.db.QueryRow("SELECT pbm FROM render WHERE sha1 = ?", sha).Scan(&pbm); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return pbm, nil
	default:
		return nil, err
	}
}
