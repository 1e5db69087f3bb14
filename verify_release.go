//go:build !debug

package sweep

import "github.com/go-sweep/sweep/point"

func logDebugf(format string, v ...interface{}) {}

func (t *statusTree) verifyStructure() {}

func (t *statusTree) verifyOrder(event point.Point) {}
