package ioload

import (
	"fmt"

	"github.com/cheggaaa/pb/v3"
)

func newProgressBar(total int, table string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", fmt.Sprintf("Inserting %s: ", table))
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
