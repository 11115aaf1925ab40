package ioutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/uric/internal/ioutil"
	"github.com/ghettovoice/uric/internal/testutil/iomock"
)

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.NewCountingWriter(&sb)
	cw.WriteString("http") //nolint:errcheck
	cw.Fprint(":", "//")   //nolint:errcheck
	cw.Write([]byte("example.com")) //nolint:errcheck
	cw.Call(func(w io.Writer) (int, error) {
		return w.Write([]byte("/path"))
	}) //nolint:errcheck

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if want := "http://example.com/path"; sb.String() != want {
		t.Errorf("sb.String() = %q, want %q", sb.String(), want)
	}
	if want := len("http://example.com/path"); num != want {
		t.Errorf("cw.Result() num = %d, want %d", num, want)
	}
}

func TestCountingWriter_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	wantErr := errors.New("write failed")

	w := iomock.NewMockWriter(ctrl)
	w.EXPECT().Write(gomock.Any()).Return(3, wantErr)

	cw := ioutil.NewCountingWriter(w)
	if _, err := cw.WriteString("http:"); !errors.Is(err, wantErr) {
		t.Fatalf("cw.WriteString() error = %v, want %v", err, wantErr)
	}
	// follow-up writes must not reach the underlying writer
	if _, err := cw.WriteString("more"); !errors.Is(err, wantErr) {
		t.Fatalf("cw.WriteString() error = %v, want %v", err, wantErr)
	}

	num, err := cw.Result()
	if !errors.Is(err, wantErr) {
		t.Fatalf("cw.Result() error = %v, want %v", err, wantErr)
	}
	if num != 3 {
		t.Errorf("cw.Result() num = %d, want 3", num)
	}
}
