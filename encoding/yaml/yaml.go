package yaml

import (
	"github.com/go-weigh/weigh/encoding"
	"gopkg.in/yaml.v3"
)

type codec struct{}

func init() {
	encoding.RegisterCodec(codec{})
}

const Name = "yaml"

func (c codec) Marshal(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

func (c codec) Unmarshal(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}

func (c codec) Name() string {
	return Name
}
