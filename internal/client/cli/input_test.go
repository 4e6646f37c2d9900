package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubReadPassword(t *testing.T, fn func(int) ([]byte, error)) {
	t.Helper()
	old := readPassword
	readPassword = fn
	t.Cleanup(func() { readPassword = old })
}

func TestGetSimpleText_RewardName(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  Coffee mug \nnext\n"), "Enter reward name", &out)
	require.NoError(t, err)
	assert.Equal(t, "Coffee mug", got)
	assert.Equal(t, "Enter reward name\n> ", out.String())
}

func TestGetSimpleText_LastLineWithoutNewline(t *testing.T) {
	got, err := GetSimpleText(rdr("500"), "Enter points required", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "500", got)
}

func TestGetSimpleText_NoInput(t *testing.T) {
	_, err := GetSimpleText(rdr(""), "Enter description", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetEmail(t *testing.T) {
	var out bytes.Buffer
	got, err := GetEmail(rdr(" Ann@Example.COM \n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got)
	assert.Equal(t, "Enter email\n> ", out.String())
}

func TestGetEmail_Invalid(t *testing.T) {
	for _, in := range []string{"ann\n", "@example.com\n", "ann@\n", "ann smith@example.com\n"} {
		_, err := GetEmail(rdr(in), io.Discard)
		assert.ErrorIs(t, err, errInvalidEmail, in)
	}
}

func TestGetPassword_ReadsStdinWithoutEcho(t *testing.T) {
	var gotFd int
	stubReadPassword(t, func(fd int) ([]byte, error) {
		gotFd = fd
		return []byte("s3cret"), nil
	})

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, int(os.Stdin.Fd()), gotFd)
	assert.Equal(t, "Enter password: \n", out.String(), "password never reaches the output")
}

func TestGetPassword_Empty(t *testing.T) {
	stubReadPassword(t, func(int) ([]byte, error) { return []byte{}, nil })

	_, err := GetPassword(io.Discard)
	assert.ErrorIs(t, err, errEmptyPassword)
}

func TestGetPassword_TerminalError(t *testing.T) {
	boom := errors.New("not a terminal")
	stubReadPassword(t, func(int) ([]byte, error) { return nil, boom })

	_, err := GetPassword(io.Discard)
	assert.ErrorIs(t, err, boom)
}

func TestGetMultiline_RewardDescription(t *testing.T) {
	in := rdr("Ceramic mug\r\n350 ml, dishwasher safe\n\nleftover\n")
	var out bytes.Buffer

	got, err := GetMultiline(in, "Enter description", &out)
	require.NoError(t, err)
	assert.Equal(t, "Ceramic mug\n350 ml, dishwasher safe", got)
	assert.Equal(t, "Enter description\n(press Enter on an empty line to finish)\n", out.String())

	rest, err := in.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "leftover\n", rest, "input after the blank line is left unread")
}

func TestGetMultiline_EndOfInput(t *testing.T) {
	got, err := GetMultiline(rdr("single line"), "Enter description", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "single line", got)
}
