package main

import "github.com/fourkey/topdesk-gateway/cmd/topdesk-gateway/cmd"

func main() {
	cmd.Execute()
}
