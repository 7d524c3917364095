// Package watch reports changes to crossword definition files.
//
// A FileWatcher watches a single file or a directory tree with fsnotify and
// hands quiet batches of changed paths to a callback. Bursts of writes (an
// editor saving through a temporary file, a git checkout touching many
// files) are coalesced by a Debouncer so each file is recompiled once.
//
//	fw, err := watch.NewFileWatcher(watch.Config{Path: "puzzles"}, logger)
//	if err != nil {
//	    return err
//	}
//	return fw.Watch(ctx, func(paths []string) {
//	    for _, p := range paths {
//	        recompile(p)
//	    }
//	})
package watch
