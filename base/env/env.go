package env

import (
	"os"
)

// PodName example: holderauction-auctiond-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}
