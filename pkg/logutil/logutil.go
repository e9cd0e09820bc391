// Package logutil provides a registry of loggers that writes to a shared
// destination, which is discarded by default and can be redirected.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mutex   sync.Mutex
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with a prefix that writes to the current log
// destination.
func GetLogger(prefix string) *log.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the new writer. If the current destination is a file opened by
// SetOutputFile, it is closed.
func SetOutput(newOut io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	closeOutFile()
	outFile = nil
	setOut(newOut)
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger
// to the named file, truncating it. If the current destination is a file
// opened by SetOutputFile, it is closed. An empty name is equivalent to
// calling SetOutput with io.Discard.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	mutex.Lock()
	defer mutex.Unlock()
	closeOutFile()
	outFile = file
	setOut(file)
	return nil
}

func setOut(newOut io.Writer) {
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
	}
}
