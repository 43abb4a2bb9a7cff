package wiki

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("wiki")
