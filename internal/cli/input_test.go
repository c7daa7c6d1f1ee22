package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleText_EOFNoInput(t *testing.T) {
	var out bytes.Buffer
	if _, err := GetSimpleText(rdr(""), "Name?", &out); err == nil {
		t.Fatal("expected error on empty input")
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	if _, err := GetPassword(&out); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetInt_RepromptsOnGarbage(t *testing.T) {
	var out bytes.Buffer
	got, err := GetInt(rdr("abc\n4.5\n42\n"), "Age:", &out)
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if n := strings.Count(out.String(), "Please enter a whole number."); n != 2 {
		t.Fatalf("expected 2 reprompts, got %d: %q", n, out.String())
	}
}

func TestGetInt_EOF(t *testing.T) {
	var out bytes.Buffer
	if _, err := GetInt(rdr("abc\n"), "Age:", &out); err == nil {
		t.Fatal("expected error when input ends mid-reprompt")
	}
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer
	got, err := GetFloat(rdr("nope\n19.99\n"), "Price:", &out)
	if err != nil {
		t.Fatal(err)
	}
	if got != 19.99 {
		t.Fatalf("got %v, want 19.99", got)
	}
}
