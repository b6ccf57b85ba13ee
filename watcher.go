package tailwind

import (
	"fmt"
	"time"

	fs "github.com/fsnotify/fsnotify"
)

const DELAY = time.Millisecond * 100

// StartWatcher reruns the build whenever one of the watched paths changes
// and calls changed after every successful rebuild. it realizes the rerun
// hints of a Result when no surrounding build system replays them, so it
// is only meant for development use. it blocks forever.
func (c *Config) StartWatcher(changed func(*Result), paths ...string) error {
	watcher, err := fs.NewWatcher()

	if err != nil {
		return err
	}

	defer watcher.Close()

	updates := make(map[string]*time.Timer)

	rebuild := func(name string) func() {
		return func() {
			fmt.Println("[TAILWIND] updating:", name)

			result, err := c.Build()

			if err != nil {
				fmt.Println("[TAILWIND]", err)
				return
			}

			if changed != nil {
				changed(result)
			}
		}
	}

	go func() {
		for {
			select {
			case e, ok := <-watcher.Events:
				if !ok {
					return
				}

				timer, ok := updates[e.Name]

				if !ok {
					updates[e.Name] = time.AfterFunc(DELAY, rebuild(e.Name))
				} else {
					timer.Reset(DELAY)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				fmt.Println("[TAILWIND] watcher:", err)
			}
		}
	}()

	for _, path := range paths {
		err = watcher.Add(path)

		if err != nil {
			fmt.Println("[TAILWIND] watcher:", err)
		}
	}

	select {}
}
