package main

import (
	"errors"
	"testing"

	"github.com/yaziciahmet/jsonv/parse"
)

func TestCheckRawInput(t *testing.T) {
	cfg := &CheckConfig{MainConfig: &MainConfig{}, Raw: true}
	if err := checkInput(cfg, nil, "arg 1", `{"a": [1, 2.5, true]}`); err != nil {
		t.Error(err)
	}
	err := checkInput(cfg, nil, "arg 1", `{"a": 1,}`)
	if !errors.Is(err, parse.ErrTrailingComma) {
		t.Errorf("got %v, want %v", err, parse.ErrTrailingComma)
	}
}

func TestCheckRawDepth(t *testing.T) {
	cfg := &CheckConfig{MainConfig: &MainConfig{}, Raw: true, Depth: 1}
	if err := checkInput(cfg, nil, "arg 1", `[1]`); err != nil {
		t.Error(err)
	}
	if err := checkInput(cfg, nil, "arg 1", `[[1]]`); !errors.Is(err, parse.ErrDepth) {
		t.Errorf("got %v, want %v", err, parse.ErrDepth)
	}
}
