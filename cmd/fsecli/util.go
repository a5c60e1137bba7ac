package main

import (
	"github.com/sirupsen/logrus"

	fse "github.com/cpenaranda/gofse"
)

func logFields(srcLen, frameLen int, outcome fse.Outcome) logrus.Fields {
	ratio := 0
	if srcLen > 0 {
		ratio = 100 * frameLen / srcLen
	}
	return logrus.Fields{
		"srcBytes":     srcLen,
		"frameBytes":   frameLen,
		"outcome":      outcome.String(),
		"ratioPercent": ratio,
	}
}
