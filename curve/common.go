package curve

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgostarter/i/commerr"
	"gopkg.in/yaml.v3"
)

const storageFileExt = ".yaml"

func NewCommonStorage(root string) *CommStorage {
	return &CommStorage{
		root: root,
	}
}

// CommStorage keeps the points of each key in <root>/<key>.yaml.
type CommStorage struct {
	root string
}

func (stg *CommStorage) fileNameByKey(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", commerr.ErrInvalidArgument
	}

	return filepath.Join(stg.root, key+storageFileExt), nil
}

// Load returns commerr.ErrNotFound for a key that was never saved.
func (stg *CommStorage) Load(key string) (ps []*Point, err error) {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return
	}

	d, err := os.ReadFile(fileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = yaml.Unmarshal(d, &ps)

	return
}

func (stg *CommStorage) Save(key string, ps []*Point) (err error) {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return
	}

	if err = os.MkdirAll(stg.root, 0700); err != nil {
		return
	}

	d, err := yaml.Marshal(ps)
	if err != nil {
		return
	}

	err = os.WriteFile(fileName, d, 0600)

	return
}
