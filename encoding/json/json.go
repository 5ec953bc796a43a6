package json

import (
	"encoding/json"

	"github.com/go-weigh/weigh/encoding"
)

type codec struct{}

func init() {
	encoding.RegisterCodec(codec{})
}

const Name = "json"

func (c codec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (c codec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (c codec) Name() string {
	return Name
}
