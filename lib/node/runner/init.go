package runner

import (
	logging "github.com/inconshreveable/log15"

	"boscoin.io/votebank/lib/common"
)

var log logging.Logger = logging.New("module", "node-runner")

func SetLogging(level logging.Lvl, handler logging.Handler) {
	log.SetHandler(logging.LvlFilterHandler(level, handler))
}

func init() {
	SetLogging(common.DefaultLogLevel, common.DefaultLogHandler)
}
