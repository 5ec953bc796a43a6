package config

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-weigh/weigh/config/source/env"
	"github.com/go-weigh/weigh/encoding"
	_ "github.com/go-weigh/weigh/encoding/json"
	_ "github.com/go-weigh/weigh/encoding/msgpack"
	_ "github.com/go-weigh/weigh/encoding/yaml"
	"github.com/go-weigh/weigh/errors"
	"github.com/go-weigh/weigh/logger"
	"github.com/go-weigh/weigh/pkg/routine"
	"github.com/spf13/cast"
)

type Config struct {
	l         sync.RWMutex
	data      map[string]interface{}
	callbacks []func(*Config)
	delimiter string
	format    string
	src       Source
}

type Option func(*Config)

func WithSource(src Source) Option {
	return func(c *Config) {
		c.src = src
	}
}

func WithFormat(format string) Option {
	return func(c *Config) {
		c.format = format
	}
}

// WithCallback registers fn to run after every successful reload.
func WithCallback(fn func(*Config)) Option {
	return func(c *Config) {
		c.callbacks = append(c.callbacks, fn)
	}
}

func New(opts ...Option) *Config {
	c := &Config{
		data:      map[string]interface{}{},
		delimiter: ".",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.src == nil {
		c.src = env.New()
	}
	if len(c.format) == 0 {
		c.format = c.src.Format()
	}
	return c
}

func (c *Config) Load() error {
	raw, err := c.src.Load()
	if err != nil {
		return errors.InvalidConfig("load config source").WithError(err)
	}
	err = c.load(raw)
	if err != nil {
		return err
	}
	routine.GoSafe(context.TODO(), func() {
		for range c.src.Watch() {
			raw, err := c.src.Load()
			if err != nil {
				logger.Log(context.TODO(), logger.ErrorLevel, map[string]interface{}{"error": err}, "reload config")
				continue
			}
			if err = c.load(raw); err != nil {
				logger.Log(context.TODO(), logger.ErrorLevel, map[string]interface{}{"error": err}, "parse config")
				continue
			}
			c.l.RLock()
			cbs := make([]func(*Config), len(c.callbacks))
			copy(cbs, c.callbacks)
			c.l.RUnlock()
			for _, cb := range cbs {
				cb(c)
			}
		}
	})
	return nil
}

func (c *Config) load(raw []byte) error {
	codec := encoding.GetCodec(c.format)
	if codec == nil {
		return errors.InvalidConfig("unsupported config format").WithMetadata(map[string]string{"format": c.format})
	}
	data := make(map[string]interface{})
	err := codec.Unmarshal(raw, &data)
	if err != nil {
		return errors.InvalidConfig("decode config").WithError(err)
	}
	c.l.Lock()
	c.data = data
	c.l.Unlock()
	return nil
}

func (c *Config) find(key string) interface{} {
	paths := strings.Split(key, c.delimiter)
	c.l.RLock()
	defer c.l.RUnlock()
	var cur interface{} = c.data
	for _, p := range paths {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur = m[p]
	}
	return cur
}

func (c *Config) Get(key string) interface{} {
	return c.find(key)
}

func (c *Config) GetString(key string) string {
	return cast.ToString(c.Get(key))
}

func (c *Config) GetBool(key string) bool {
	return cast.ToBool(c.Get(key))
}

func (c *Config) GetInt(key string) int {
	return cast.ToInt(c.Get(key))
}

func (c *Config) GetUint64(key string) uint64 {
	return cast.ToUint64(c.Get(key))
}

func (c *Config) GetDuration(key string) time.Duration {
	return cast.ToDuration(c.Get(key))
}

// Unmarshal decodes the sub tree at paths (the whole tree when empty) into v
// by round tripping through the source codec.
func (c *Config) Unmarshal(v interface{}, paths ...string) error {
	var cur interface{}
	if len(paths) == 0 {
		c.l.RLock()
		cur = c.data
		c.l.RUnlock()
	} else {
		cur = c.find(strings.Join(paths, c.delimiter))
	}
	if cur == nil {
		return errors.InvalidConfig("config path not found").WithMetadata(map[string]string{"path": strings.Join(paths, c.delimiter)})
	}
	codec := encoding.GetCodec(c.format)
	raw, err := codec.Marshal(cur)
	if err != nil {
		return errors.InvalidConfig("encode config sub tree").WithError(err)
	}
	err = codec.Unmarshal(raw, v)
	if err != nil {
		return errors.InvalidConfig("decode config sub tree").WithError(err)
	}
	return nil
}
