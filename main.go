// main is the entry point of the folio CLI.
package main

import (
	"github.com/huangsam/folio/cmd"
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/internal/iocache"
)

func main() {
	defer iocache.CloseStores()
	cmd.SetStoreManager(iocache.Manager)

	if err := cmd.Execute(); err != nil {
		iocache.CloseStores()
		contract.LogFatal("Error running folio", err)
	}
}
