// Command ltmesh prints logarithm+tan frequency meshes and their quadrature
// weights.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("ltmesh failed")
		os.Exit(1)
	}
}
