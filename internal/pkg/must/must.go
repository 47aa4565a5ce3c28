package must

import (
	"os"

	"gopkg.in/yaml.v3"
)

// PanicIf will call panic(err) in case given err is not nil.
func PanicIf(err error) {
	if err != nil {
		panic(err)
	}
}

// WriteFile is a wrapper for os.WriteFile.
func WriteFile(name string, buf []byte, perm os.FileMode) {
	err := os.WriteFile(name, buf, perm)
	PanicIf(err)
}

// UnmarshalYaml is a wrapper for yaml.Unmarshal.
func UnmarshalYaml(data []byte, v interface{}) {
	err := yaml.Unmarshal(data, v)
	PanicIf(err)
}

// MarshalYaml is a wrapper for yaml.Marshal.
func MarshalYaml(v interface{}) []byte {
	data, err := yaml.Marshal(v)
	PanicIf(err)
	return data
}
