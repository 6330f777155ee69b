// @title        Planetary API
// @version      1.0
// @description  行星目錄與使用者註冊、登入的 REST API
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"os"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}

var exitFunc = os.Exit
