package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	randomAgent "github.com/boardwalk-games/boardwalk/internal/agents/random"
	"github.com/boardwalk-games/boardwalk/internal/engine"
	"github.com/boardwalk-games/boardwalk/internal/handlers/console"
	"github.com/boardwalk-games/boardwalk/internal/orchestrator"
	gameRepo "github.com/boardwalk-games/boardwalk/internal/repositories/game"
)

func main() {
	// Load .env if present; real env still wins
	_ = godotenv.Load()

	seed, err := strconv.ParseInt(getEnv("SEED", "0"), 10, 64)
	if err != nil {
		log.Fatalf("Invalid SEED: %v", err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	maxTurns, err := strconv.Atoi(getEnv("MAX_TURNS", "500"))
	if err != nil {
		log.Fatalf("Invalid MAX_TURNS: %v", err)
	}

	names := strings.Split(getEnv("PLAYERS", "Ada,Grace,Edsger"), ",")
	var setups []engine.PlayerSetup
	for i, name := range names {
		setups = append(setups, engine.PlayerSetup{
			ID:   fmt.Sprintf("player-%d", i+1),
			Name: strings.TrimSpace(name),
		})
	}

	eng, err := engine.New(&engine.Config{
		Seed:    seed,
		Players: setups,
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	agents := make(map[string]orchestrator.Agent, len(setups))
	for i, setup := range setups {
		agents[setup.ID] = randomAgent.New(&randomAgent.Config{
			Seed: seed + int64(i) + 1,
		})
	}

	renderer, err := console.New(&console.Config{
		Writer: os.Stdout,
	})
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	// Persistence is optional: set REDIS_ADDR to record snapshots and
	// the event history
	var repo gameRepo.Repository
	if addr := getEnv("REDIS_ADDR", ""); addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		repo, err = gameRepo.NewRedis(&gameRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create game repository: %v", err)
		}
	}

	orch, err := orchestrator.New(&orchestrator.Config{
		Engine:   eng,
		Agents:   agents,
		Sink:     renderer,
		Repo:     repo,
		MaxTurns: maxTurns,
	})
	if err != nil {
		log.Fatalf("Failed to create orchestrator: %v", err)
	}

	log.Printf("Starting game %s with seed %d", eng.State().ID, seed)

	output, err := orch.Run(context.Background())
	if err != nil {
		log.Fatalf("Game run failed: %v", err)
	}

	if output.Winner != "" {
		winner, _ := output.State.PlayerByID(output.Winner)
		log.Printf("Game over after %d turns: %s wins", output.Turns, winner.Name)
	} else {
		log.Printf("Turn limit reached after %d turns with no winner", output.Turns)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
