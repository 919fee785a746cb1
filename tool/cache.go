// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"os"

	"github.com/jenspresser/groovy-core/memo"
	"github.com/urfave/cli/v2"
)

var CacheCmd = cli.Command{
	Name:  "cache",
	Usage: "inspect or reset a persistent memoization cache",
	Subcommands: []*cli.Command{
		{
			Action:    doCacheInfo,
			Name:      "info",
			Usage:     "print the number of cached results",
			ArgsUsage: "<cache directory>",
		},
		{
			Action:    doCacheReset,
			Name:      "reset",
			Usage:     "delete a cache directory and all cached results",
			ArgsUsage: "<cache directory>",
		},
	},
}

func doCacheInfo(context *cli.Context) error {
	dir, err := cacheDirArg(context)
	if err != nil {
		return err
	}
	store, err := memo.OpenLevelDB(dir)
	if err != nil {
		return err
	}
	defer store.Close()
	entries, err := store.Entries()
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d cached results\n", dir, entries)
	return nil
}

func doCacheReset(context *cli.Context) error {
	dir, err := cacheDirArg(context)
	if err != nil {
		return err
	}
	// Opening before deleting verifies the directory actually holds a cache,
	// so a typo does not wipe an unrelated directory.
	store, err := memo.OpenLevelDB(dir)
	if err != nil {
		return err
	}
	if err := store.Close(); err != nil {
		return err
	}
	return os.RemoveAll(dir)
}

func cacheDirArg(context *cli.Context) (string, error) {
	if context.Args().Len() != 1 {
		return "", fmt.Errorf("missing cache directory parameter")
	}
	return context.Args().Get(0), nil
}
