/*
Package mandelpbm renders black-and-white bitmaps of the Mandelbrot set as
binary PBM images and maintains an optional catalog of rendered output.
*/
package mandelpbm

import (
	"bytes"
	"log"
)

type MandelPBM struct {
	db     *Catalog
	logger *log.Logger
}

func New(db *Catalog, logger *log.Logger) *MandelPBM {
	return &MandelPBM{
		db:     db,
		logger: logger,
	}
}

// Store renders a size-by-size image and records it in the catalog,
// returning the catalog id.
func (m *MandelPBM) Store(size int) (int64, error) {
	b := new(bytes.Buffer)
	if err := Render(b, size); err != nil {
		return 0, err
	}

	id, err := m.db.Add(size, size, b.Bytes())
	if err != nil {
		return 0, err
	}
	m.logger.Printf("stored %dx%d render as id %d\n", size, size, id)

	return id, nil
}
