package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var flagServerAddr string
var flagLogLevel string
var flagChatID uint

func parseFlags() {
	// .env, если есть, просто пополняет окружение
	_ = godotenv.Load()

	flag.StringVar(&flagServerAddr, "a", "http://localhost:8080", "messages API address")
	flag.StringVar(&flagLogLevel, "l", "debug", "log level")
	flag.UintVar(&flagChatID, "c", 0, "chat id")
	flag.Parse()

	if envServerAddr := os.Getenv("SERVER_ADDR"); envServerAddr != "" {
		flagServerAddr = envServerAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}

	if envChatID := os.Getenv("CHAT_ID"); envChatID != "" {
		if v, err := strconv.ParseUint(envChatID, 10, 32); err == nil {
			flagChatID = uint(v)
		}
	}
}
