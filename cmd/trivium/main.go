// SPDX-FileCopyrightText: 2025 The Streamkit authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/streamkit/trivium"
)

const (
	// keySalt and ivSalt keep passphrase-derived keys and IVs distinct.
	keySalt = "trivium-key"
	ivSalt  = "trivium-iv"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	myApp := cli.NewApp()
	myApp.Name = "trivium"
	myApp.Usage = "generate Trivium keystream"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "key,k",
			Value: "0123456789ABCDEF1234",
			Usage: "80-bit key as 20 hex characters",
		},
		cli.StringFlag{
			Name:  "iv",
			Value: "0123456789ABCDEF1234",
			Usage: "80-bit initialization vector as 20 hex characters",
		},
		cli.StringFlag{
			Name:  "pass",
			Usage: "derive key and IV from a passphrase instead of --key/--iv",
		},
		cli.IntFlag{
			Name:  "bits,n",
			Value: 256,
			Usage: "number of keystream bits to generate, multiple of 8",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		key, iv, err := keying(c)
		if err != nil {
			return err
		}

		engine, err := trivium.NewCipher(key, iv)
		if err != nil {
			return errors.Wrap(err, "setup")
		}

		ks, err := engine.Keystream(c.Int("bits"))
		if err != nil {
			return errors.Wrap(err, "keystream")
		}

		fmt.Printf("%X\n", ks)

		return nil
	}
	if err := myApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func keying(c *cli.Context) (key, iv []byte, err error) {
	if pass := c.String("pass"); pass != "" {
		return trivium.KeyFromPassphrase(pass, keySalt), trivium.KeyFromPassphrase(pass, ivSalt), nil
	}

	if key, err = trivium.KeyFromHex(c.String("key")); err != nil {
		return nil, nil, errors.Wrap(err, "key")
	}
	if iv, err = trivium.KeyFromHex(c.String("iv")); err != nil {
		return nil, nil, errors.Wrap(err, "iv")
	}

	return key, iv, nil
}
