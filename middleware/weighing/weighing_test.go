package weighing

import (
	"context"
	"testing"
	"time"

	"github.com/go-weigh/weigh"
	_ "github.com/go-weigh/weigh/encoding/json"
	"github.com/go-weigh/weigh/errors"
	"github.com/go-weigh/weigh/meter"
	"github.com/go-weigh/weigh/scale"
	"github.com/stretchr/testify/assert"
)

func capture(wd *weigh.Weighed) func(ctx context.Context, req interface{}) (interface{}, error) {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		got, ok := weigh.FromContext(ctx)
		if ok {
			*wd = got
		}
		return req, nil
	}
}

func TestDefaultScale(t *testing.T) {
	var wd weigh.Weighed
	rsp, err := Weigh()(capture(&wd))(context.TODO(), "12345")
	assert.Nil(t, err)
	assert.Equal(t, "12345", rsp)
	// default scale charges one unit per encoded byte
	assert.Equal(t, weigh.Weight(5), wd.Weight)
	assert.Equal(t, weigh.Normal, wd.Class)
	assert.True(t, wd.PaysFee)
}

func TestWithScale(t *testing.T) {
	var wd weigh.Weighed
	mw := Weigh(WithScale(scale.Linear{Coefficient: 3}.ByLength()))
	_, err := mw(capture(&wd))(context.TODO(), []byte("0123456789"))
	assert.Nil(t, err)
	assert.Equal(t, weigh.Weight(30), wd.Weight)
}

func TestWeighFunc(t *testing.T) {
	var wd weigh.Weighed
	s := scale.Conditional{Coefficient: 7}
	mw := Weigh(WithWeighFunc(func(ctx context.Context, req interface{}) weigh.Weighed {
		on := req != nil
		return weigh.Weighed{Weight: s.Weigh(on, 5), Class: s.Classify(), PaysFee: s.PaysFee()}
	}))
	_, err := mw(capture(&wd))(context.TODO(), "req")
	assert.Nil(t, err)
	assert.Equal(t, weigh.Weight(35), wd.Weight)

	_, err = mw(capture(&wd))(context.TODO(), nil)
	assert.Nil(t, err)
	assert.Equal(t, weigh.Weight(7), wd.Weight)
}

func TestMeterRejects(t *testing.T) {
	m := meter.NewLocal(8, time.Hour)
	mw := Weigh(WithMeter(m))
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return req, nil
	}
	// five bytes each, the second one does not fit the budget of eight
	_, err := mw(handler)(context.TODO(), "12345")
	assert.Nil(t, err)
	_, err = mw(handler)(context.TODO(), "12345")
	assert.True(t, errors.IsWeightExhausted(err))
}

func TestFreeSkipsMeter(t *testing.T) {
	m := meter.NewLocal(1, time.Hour)
	mw := Weigh(WithScale(scale.Free{}), WithMeter(m))
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return req, nil
	}
	for i := 0; i < 10; i++ {
		_, err := mw(handler)(context.TODO(), "a very long request body")
		assert.Nil(t, err)
	}
}

func TestOperationalBypass(t *testing.T) {
	m := meter.NewLocal(4, time.Hour)
	mw := Weigh(
		WithMeter(m),
		WithWeighFunc(func(ctx context.Context, req interface{}) weigh.Weighed {
			return weigh.Weighed{Weight: 100, Class: weigh.Operational, PaysFee: true}
		}),
	)
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return req, nil
	}
	_, err := mw(handler)(context.TODO(), "req")
	assert.Nil(t, err)
}

func TestEncodedSize(t *testing.T) {
	assert.Equal(t, 0, encodedSize(nil))
	assert.Equal(t, 3, encodedSize("abc"))
	assert.Equal(t, 4, encodedSize([]byte("abcd")))
	// structs are sized by their json encoding
	assert.Equal(t, len(`{"a":1}`), encodedSize(map[string]int{"a": 1}))
}
