package main

import (
	"log"

	"stockalloc/cmd"
)

func main() {
	apiHandler, config, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(config.ApiPort)
	if err != nil {
		log.Fatal(err)
	}
}
