//go:build !ebiten

package main

import (
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/game-of-colors/utils"
)

func runWindow(utils.Config, int, *log.Logger) error {
	return errors.New("the window requires the ebiten build tag; rebuild with `go build -tags ebiten`")
}
