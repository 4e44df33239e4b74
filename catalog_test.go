package mandelpbm

import (
	"bytes"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) (*Catalog, func()) {
	dir, err := ioutil.TempDir("", "mandelpbm")
	require.NoError(t, err)

	db, err := NewCatalog(filepath.Join(dir, "test.db"))
	require.NoError(t, err)

	return db, func() {
		db.Close()
		os.RemoveAll(dir)
	}
}

func TestCatalog(t *testing.T) {
	db, done := testCatalog(t)
	defer done()

	b := new(bytes.Buffer)
	require.NoError(t, Render(b, 9))

	id, err := db.Add(9, 9, b.Bytes())
	require.NoError(t, err)

	// Identical content maps to the same row.
	dup, err := db.Add(9, 9, b.Bytes())
	require.NoError(t, err)
	assert.Equal(t, id, dup)

	infos, err := db.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, id, infos[0].ID)
	assert.Equal(t, 9, infos[0].Width)
	assert.Equal(t, 9, infos[0].Height)

	blob, err := db.Find(infos[0].SHA1)
	require.NoError(t, err)
	assert.Equal(t, b.Bytes(), blob)

	missing, err := db.Find("DOESNOTEXIST")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore(t *testing.T) {
	db, done := testCatalog(t)
	defer done()

	m := New(db, log.New(ioutil.Discard, "", 0))

	id, err := m.Store(16)
	require.NoError(t, err)

	infos, err := db.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, id, infos[0].ID)
	assert.Equal(t, 16, infos[0].Width)

	_, err = m.Store(0)
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	db, done := testCatalog(t)
	defer done()

	dir, err := ioutil.TempDir("", "mandelpbm-scan")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	b := new(bytes.Buffer)
	require.NoError(t, Render(b, 9))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "mandel.pbm"), b.Bytes(), 0644))

	// Not a PBM despite the extension; skipped, not fatal.
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "bogus.pbm"), []byte("not a bitmap"), 0644))

	// Wrong extension; never considered.
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "notes.txt"), []byte("P4\n1 1\n\x00"), 0644))

	m := New(db, log.New(ioutil.Discard, "", 0))
	require.NoError(t, m.Scan(dir))

	infos, err := db.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, 9, infos[0].Width)
	assert.Equal(t, 9, infos[0].Height)
}
