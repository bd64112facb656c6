// Package savefile implements atomic file saving via a staging file.
//
// A File writes into a hidden, uniquely named staging file in the
// destination directory. Commit renames the staging file over the
// destination, so the destination either receives the complete new
// content or is left exactly as it was; a partially written file is
// never visible at the destination path.
//
//	f, err := savefile.New("level1.map", savefile.Binary)
//	if err != nil { ... }
//	if _, err := f.Write(data); err != nil {
//	    f.Discard()
//	    return err
//	}
//	return f.Commit()
//
// Text mode applies the platform text-mode encoding on write and is
// paired with TextDecoder for reads.
package savefile
