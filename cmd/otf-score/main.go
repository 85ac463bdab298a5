package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	otfscore "github.com/nsip/otf-score"
	"github.com/peterbourgon/ff/v3"
)

func main() {

	fs := flag.NewFlagSet("otf-score", flag.ExitOnError)
	var (
		_           = fs.String("config", "", "config file (optional), json format.")
		serviceName = fs.String("name", "", "name for this score service instance")
		serviceID   = fs.String("id", "", "id for this score service instance, leave blank to auto-generate a unique id")
		serviceHost = fs.String("host", "localhost", "name/address of host for this service")
		servicePort = fs.Int("port", 0, "port to run service on, if not specified will assign an available port automatically")
		strategy    = fs.String("strategy", "table", "score conversion strategy, one of (table|proportional)")
		itpScale    = fs.Float64("itpScale", 677, "top of the ITP scale for the proportional strategy, 990 reads ITP as a TOEIC score")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix("OTF_SCORE_SRVC"),
	); err != nil {
		fmt.Printf("\nCannot read otf-score configuration:\n%s\n\n", err)
		os.Exit(1)
	}

	opts := []otfscore.Option{
		otfscore.Name(*serviceName),
		otfscore.ID(*serviceID),
		otfscore.Host(*serviceHost),
		otfscore.Port(*servicePort),
		otfscore.Strategy(*strategy),
		otfscore.ITPScale(*itpScale),
	}

	srvc, err := otfscore.New(opts...)
	if err != nil {
		fmt.Printf("\nCannot create otf-score service:\n%s\n\n", err)
		os.Exit(1)
	}

	srvc.PrintConfig()

	// signal handler for shutdown
	closed := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, os.Interrupt)
	go func() {
		<-c
		fmt.Println("\notf-score shutting down")
		srvc.Shutdown()
		fmt.Println("otf-score closed")
		close(closed)
	}()

	srvc.Start()

	// block until shutdown by sig-handler
	<-closed

}
