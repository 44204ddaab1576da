package memory_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "ocm.software/open-component-model/bindings/go/webfile/host/memory"
)

// fire registers callbacks on reader that count their invocations and signal done.
func fire(reader *Reader) (loads, errs, aborts *atomic.Int32, done chan struct{}) {
	loads, errs, aborts = new(atomic.Int32), new(atomic.Int32), new(atomic.Int32)
	done = make(chan struct{}, 3)
	reader.OnLoad(func() { loads.Add(1); done <- struct{}{} })
	reader.OnError(func() { errs.Add(1); done <- struct{}{} })
	reader.OnAbort(func() { aborts.Add(1); done <- struct{}{} })
	return loads, errs, aborts, done
}

func TestBlob(t *testing.T) {
	r := require.New(t)
	data := []byte("data")
	b := NewBlob(data, "text/plain")
	data[0] = 'x'

	r.Equal(int64(4), b.Size())
	r.Equal("text/plain", b.Type())
	r.Equal([]byte("data"), b.Bytes())
}

func TestFileList(t *testing.T) {
	r := require.New(t)
	a := NewFile("a", nil, "", time.Time{})
	b := NewFile("b", nil, "", time.Time{})
	list := NewFileList(a)
	r.Equal(1, list.Length())

	list.Append(b)
	r.Equal(2, list.Length())
	f, ok := list.Item(1)
	r.True(ok)
	r.Equal("b", f.Name())

	list.Remove(0)
	list.Remove(5)
	r.Equal(1, list.Length())
	_, ok = list.Item(1)
	r.False(ok)
	_, ok = list.Item(-1)
	r.False(ok)
}

func TestInput(t *testing.T) {
	input := NewInput(nil)
	_, ok := input.Files()
	assert.False(t, ok)

	input.SetFiles(NewFileList())
	list, ok := input.Files()
	assert.True(t, ok)
	assert.Equal(t, 0, list.Length())
}

func TestEnvironment(t *testing.T) {
	r := require.New(t)
	env := New()

	b, err := env.NewBlob([]string{"a", "b", "c"}, "text/plain")
	r.NoError(err)
	r.Equal(int64(3), b.Size())
	r.Equal("text/plain", b.Type())

	_, ok := env.InputByID("files")
	r.False(ok)
	input := NewInput(nil)
	env.SetInput("files", input)
	found, ok := env.InputByID("files")
	r.True(ok)
	r.Same(input, found)
}

func TestReader(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		r := require.New(t)
		reader := NewReader(FaultNone)
		loads, errs, aborts, done := fire(reader)
		r.NoError(reader.ReadAsText(NewBlob([]byte("text"), "")))
		<-done

		text, ok := reader.Result()
		r.True(ok)
		r.Equal("text", text)
		r.Equal(int32(1), loads.Load())
		r.Zero(errs.Load())
		r.Zero(aborts.Load())
	})

	t.Run("non-text", func(t *testing.T) {
		r := require.New(t)
		reader := NewReader(FaultNonText)
		loads, _, _, done := fire(reader)
		r.NoError(reader.ReadAsText(NewBlob([]byte("text"), "")))
		<-done

		_, ok := reader.Result()
		r.False(ok)
		r.Equal(int32(1), loads.Load())
	})

	t.Run("error", func(t *testing.T) {
		r := require.New(t)
		reader := NewReader(FaultError)
		_, errs, _, done := fire(reader)
		r.NoError(reader.ReadAsText(NewBlob(nil, "")))
		<-done

		r.ErrorIs(reader.Error(), ErrNotReadable)
		r.Equal(int32(1), errs.Load())
	})

	t.Run("abort while silent fires once", func(t *testing.T) {
		r := require.New(t)
		reader := NewReader(FaultSilent)
		loads, _, aborts, done := fire(reader)
		r.NoError(reader.ReadAsText(NewBlob(nil, "")))
		reader.Abort()
		reader.Abort()
		<-done

		r.Equal(int32(1), aborts.Load())
		r.Zero(loads.Load())
	})

	t.Run("abort without read is a no-op", func(t *testing.T) {
		reader := NewReader(FaultNone)
		_, _, aborts, _ := fire(reader)
		reader.Abort()
		assert.Zero(t, aborts.Load())
	})

	t.Run("concurrent read is rejected", func(t *testing.T) {
		r := require.New(t)
		reader := NewReader(FaultSilent)
		r.NoError(reader.ReadAsText(NewBlob(nil, "")))
		r.Error(reader.ReadAsText(NewBlob(nil, "")))
	})

	t.Run("foreign blob is rejected", func(t *testing.T) {
		reader := NewReader(FaultNone)
		assert.Error(t, reader.ReadAsText(foreignBlob{}))
	})
}

func TestFaultString(t *testing.T) {
	assert.Equal(t, "none", FaultNone.String())
	assert.Equal(t, "silent", FaultSilent.String())
	assert.Equal(t, "unknown(42)", Fault(42).String())
}

type foreignBlob struct{}

func (foreignBlob) Size() int64  { return 0 }
func (foreignBlob) Type() string { return "" }
