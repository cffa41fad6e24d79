package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/joho/godotenv"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type service struct {
	name    string
	image   string
	port    nat.Port
	waitFor wait.Strategy
	env     func(host, port string) string
}

var services = []service{
	{
		name:    "mongo",
		image:   "mongo:7",
		port:    "27017/tcp",
		waitFor: wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
		env: func(host, port string) string {
			return fmt.Sprintf("DB_TYPE=mongo\nMONGO_URI=mongodb://%s:%s", host, port)
		},
	},
	{
		name:    "redis",
		image:   "redis:7-alpine",
		port:    "6379/tcp",
		waitFor: wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		env: func(host, port string) string {
			return fmt.Sprintf("REDIS_URL=redis://%s:%s/0", host, port)
		},
	},
}

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run the innohub backing services (mongo, redis) in local containers and
print the environment variables that point the server at them.

Usage:

devstack [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to a .env file; MONGO_IMAGE and REDIS_IMAGE override the images

example
  devstack -f /path/to/something/.env
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	ctx := context.Background()
	var containers []testcontainers.Container
	terminate := func() {
		for _, c := range containers {
			if err := c.Terminate(context.Background()); err != nil {
				log.Printf("Failed to terminate container: %v\n", err)
			}
		}
	}

	for _, svc := range services {
		image := svc.image
		if override := os.Getenv(fmt.Sprintf("%s_IMAGE", strings.ToUpper(svc.name))); override != "" {
			image = override
		}

		log.Printf("Starting %s (%s)...\n", svc.name, image)
		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        image,
				ExposedPorts: []string{string(svc.port)},
				WaitingFor:   svc.waitFor,
			},
			Started: true,
		})
		if err != nil {
			terminate()
			log.Fatalf("Failed to start %s: %v\n", svc.name, err)
		}
		containers = append(containers, c)

		host, err := c.Host(ctx)
		if err != nil {
			terminate()
			log.Fatalf("Failed to resolve %s host: %v\n", svc.name, err)
		}
		mapped, err := c.MappedPort(ctx, svc.port)
		if err != nil {
			terminate()
			log.Fatalf("Failed to resolve %s port: %v\n", svc.name, err)
		}
		fmt.Println(svc.env(host, mapped.Port()))
	}

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating containers...\n", sig)
	terminate()
}
