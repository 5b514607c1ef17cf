package loader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"

	"github.com/cosmos/abidecoder/types"

	errorsmod "cosmossdk.io/errors"
)

// JSONRegistrar accepts ABI documents in JSON form.
type JSONRegistrar interface {
	AddJSON(raw []byte) error
}

// ReadABIFile reads an ABI document and returns it as a JSON array. YAML
// files (.yaml, .yml) are converted to JSON first. Compiler artifacts whose
// top-level object carries an "abi" array are unwrapped.
func ReadABIFile(path string) ([]byte, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		bz, err = yaml.YAMLToJSON(bz)
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrRegistrationType, "%s: %s", path, err)
		}
	}

	abi, err := ExtractABI(bz)
	if err != nil {
		return nil, errorsmod.Wrap(err, path)
	}
	return abi, nil
}

// ExtractABI returns the ABI array held by raw, which is either the array
// itself or an artifact object with an "abi" field.
func ExtractABI(raw []byte) ([]byte, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errorsmod.Wrap(types.ErrRegistrationType, "invalid JSON document")
	}

	doc := gjson.ParseBytes(raw)
	switch {
	case doc.IsArray():
		return raw, nil
	case doc.IsObject():
		if abi := doc.Get("abi"); abi.IsArray() {
			return []byte(abi.Raw), nil
		}
	}
	return nil, errorsmod.Wrap(types.ErrRegistrationType, "document is neither an ABI array nor an artifact with an abi field")
}

// LoadABIFiles reads every path and registers its entries, in order.
func LoadABIFiles(reg JSONRegistrar, paths ...string) error {
	for _, path := range paths {
		bz, err := ReadABIFile(path)
		if err != nil {
			return err
		}
		if err := reg.AddJSON(bz); err != nil {
			return errorsmod.Wrap(err, path)
		}
	}
	return nil
}
