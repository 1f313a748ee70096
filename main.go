// Package main is the entry point for the kana-dojo application.
package main

import (
	"github.com/Neicx/kana-dojo/cmd"
	"github.com/Neicx/kana-dojo/config"
	"github.com/Neicx/kana-dojo/internal/cache"
	"github.com/Neicx/kana-dojo/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Initialize asynchronous background cleanup of expired engine caches.
	go cache.CollectGarbage()

	cmd.Execute()
}
