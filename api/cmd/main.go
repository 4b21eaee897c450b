package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"

	"github.com/hoot-chain/hoot/api"
)

func main() {
	v := viper.New()
	v.SetEnvPrefix("HOOT_GATEWAY")
	v.AutomaticEnv()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "5000")
	v.SetDefault("chain_id", "hoot-testnet")
	v.SetDefault("node_uri", "http://localhost:26657")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("read_timeout", "15s")
	v.SetDefault("write_timeout", "15s")

	v.SetConfigName("gateway")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.hoot")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Failed to read config: %v", err)
		}
	}

	config := &api.Config{
		Host:            v.GetString("host"),
		Port:            v.GetString("port"),
		ChainID:         v.GetString("chain_id"),
		NodeURI:         v.GetString("node_uri"),
		JWTSecret:       []byte(v.GetString("jwt_secret")),
		ReadTimeout:     v.GetDuration("read_timeout"),
		WriteTimeout:    v.GetDuration("write_timeout"),
		ShutdownTimeout: 10 * time.Second,
	}

	store := api.NewRPCStateReader(config.NodeURI)

	server, err := api.NewServer(store, config)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	fmt.Println("HOOT read gateway")
	fmt.Printf("  Chain ID: %s\n", config.ChainID)
	fmt.Printf("  Node URI: %s\n", config.NodeURI)
	fmt.Printf("  Listen:   %s:%s\n", config.Host, config.Port)

	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
