package main

import (
	"boscoin.io/votebank/cmd/votebank/cmd"
)

func main() {
	cmd.Execute()
}
