// Directory watcher service which obfuscates (or restores) the files dropped into a directory
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/xitonix/anubis/cmd"
	"github.com/xitonix/anubis/logging"
	"github.com/xitonix/anubis/obfuscate"
	"github.com/xitonix/anubis/taps"
	"golang.org/x/crypto/ssh/terminal"
)

type directoryTap interface {
	obfuscate.Tap
	Errors() <-chan error
	Progress() <-chan *taps.Result
}

func main() {
	source := flag.String("source", "src", "The directory to watch")
	target := flag.String("target", "target", "The directory to write the results into")
	mode := flag.String("mode", "encode", "The operation to run on the new files (encode|decode)")
	backend := flag.String("backend", "poll", "The filesystem watcher backend (poll|notify)")
	interval := flag.Duration("interval", 100*time.Millisecond, "The polling interval of the 'poll' backend, or the settle time of the 'notify' backend")
	workers := flag.Uint("workers", 10, "The number of files to process in parallel")
	deleteCompleted := flag.Bool("delete", false, "Delete the input files once they have been processed successfully")
	verbose := flag.Bool("verbose", false, "Enable debug logs")
	flag.Parse()

	logger, err := logging.NewZap(*verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Close()

	var op obfuscate.Operation
	switch *mode {
	case "encode":
		op = obfuscate.Encode
	case "decode":
		op = obfuscate.Decode
	default:
		logger.Fatalf("invalid mode '%s'. The mode must be either 'encode' or 'decode'", *mode)
	}

	if *deleteCompleted && !cmd.AskForConfirmation(os.Stdin, os.Stdout, "The input files will be deleted once processed. Are you sure") {
		return
	}

	fmt.Print("Enter your key: ")
	key, err := terminal.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		logger.Fatal(err)
	}

	cipher, err := obfuscate.NewCipher(string(key))
	if err != nil {
		logger.Fatal(err)
	}

	var tap directoryTap
	switch *backend {
	case "poll":
		tap, err = taps.NewWatcherTap(*source, *target, op, *interval, cipher, true, true, *deleteCompleted)
	case "notify":
		tap, err = taps.NewNotifyTap(*source, *target, op, *interval, cipher, true, true, *deleteCompleted)
	default:
		err = fmt.Errorf("invalid backend '%s'. The backend must be either 'poll' or 'notify'", *backend)
	}
	if err != nil {
		logger.Fatal(err)
	}

	engine := obfuscate.NewEngine(uint16(*workers), false, logger, tap)
	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range tap.Errors() {
			logger.Error(err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for p := range tap.Progress() {
			if p.Error != nil {
				logger.Errorf("%s > %s %s: %s", p.Input.Name, p.Output.Name, p.Status, p.Error)
				continue
			}
			logger.Infof("%s > %s %s", p.Input.Name, p.Output.Name, p.Status)
		}
	}()

	engine.Start()
	logger.Infof("the service is watching '%s' (%s, key %s). Press Ctrl+C to stop it", *source, op, cipher.Schedule().Fingerprint())

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	engine.Stop()
	wg.Wait()
	logger.Info("the service has been stopped successfully")
}
