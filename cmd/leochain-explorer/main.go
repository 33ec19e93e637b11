// @title           LeoChain Explorer API
// @version         1.0
// @description     Block explorer and local wallet for a LeoChain node
// @host            localhost:3000
// @BasePath        /
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
