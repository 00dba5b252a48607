package cpu

import (
	"github.com/ezrec/minisys/translate"
)

var f = translate.From
