package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrianliechti/speech/pkg/client"

	"github.com/google/uuid"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")
	voiceFlag := flag.String("voice", "", "voice id")
	outputFlag := flag.String("output", ".", "output directory")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	var voice *string

	if *voiceFlag != "" {
		voice = voiceFlag
	}

	synthesize(ctx, c, voice, *outputFlag)
}

func synthesize(ctx context.Context, c *client.Client, voice *string, dir string) {
	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

LOOP:
	for {
		output.WriteString(">>> ")
		input, err := reader.ReadString('\n')

		if errors.Is(err, io.EOF) {
			return
		}

		if err != nil {
			panic(err)
		}

		input = strings.TrimSpace(input)

		if input == "" {
			continue LOOP
		}

		speech, err := c.Speech.New(ctx, client.SpeechRequest{
			Text:  input,
			Voice: voice,
		})

		if err != nil {
			output.WriteString(err.Error() + "\n")
			continue LOOP
		}

		name := filepath.Join(dir, uuid.New().String()+".mp3")

		if err := os.WriteFile(name, speech.Content, 0600); err != nil {
			output.WriteString(err.Error() + "\n")
			continue LOOP
		}

		fmt.Println("Saved: " + name)

		output.WriteString("\n")
	}
}
