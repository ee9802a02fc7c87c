package anubis

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/xitonix/anubis/logging"
	"github.com/xitonix/anubis/obfuscate"
)

func Example() {
	cipher, err := obfuscate.NewCipher("lemon")
	if err != nil {
		log.Fatal(err)
	}

	pipe := obfuscate.NewPipe(1)
	engine := obfuscate.NewEngine(2, false, logging.Nop(), pipe)
	engine.Start()
	defer engine.Stop()

	encrypted := &bytes.Buffer{}
	decrypted := &bytes.Buffer{}

	var wg sync.WaitGroup
	wg.Add(1)
	encode := obfuscate.NewTask(obfuscate.Encode, strings.NewReader("attack at dawn"), encrypted)
	err = pipe.Push(obfuscate.NewWorkUnit(encode, cipher, func(w *obfuscate.WorkUnit) {
		defer wg.Done()
		if w.Error != nil {
			log.Fatal(w.Error)
		}
	}))
	if err != nil {
		log.Fatal(err)
	}
	wg.Wait()

	wg.Add(1)
	decode := obfuscate.NewTask(obfuscate.Decode, bytes.NewReader(encrypted.Bytes()), decrypted)
	err = pipe.Push(obfuscate.NewWorkUnit(decode, cipher, func(w *obfuscate.WorkUnit) {
		defer wg.Done()
		if w.Error != nil {
			log.Fatal(w.Error)
		}
	}))
	if err != nil {
		log.Fatal(err)
	}
	wg.Wait()

	fmt.Print(encrypted.String())
	fmt.Print(decrypted.String())
	// Output:
	// 00580081260060001F00085A6084A620326006000862608AA6141260EC26
	// attackatdawn
}
