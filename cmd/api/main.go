package main

import (
	"fmt"
	"log"
	"os"

	"finsim/cmd"
)

func main() {
	fmt.Println(os.Getenv("commit_hash"))
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	err = deps.ApiHandler.StartApi(3009)
	if err != nil {
		deps.Logger.Fatal(err)
	}
}
