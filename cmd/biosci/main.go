// cmd/biosci/main.go
package main

import (
	"biosci/internal/app"
	"biosci/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
