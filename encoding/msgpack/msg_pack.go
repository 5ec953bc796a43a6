package msgpack

import (
	"github.com/go-weigh/weigh/encoding"
	"github.com/vmihailenco/msgpack/v5"
)

type codec struct{}

func init() {
	encoding.RegisterCodec(codec{})
}

const Name = "msgpack"

func (c codec) Marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (c codec) Unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}

func (c codec) Name() string {
	return Name
}
