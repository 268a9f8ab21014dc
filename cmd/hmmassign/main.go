// cmd/hmmassign/main.go
package main

import (
	"hmmassign/internal/app"
	"hmmassign/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
