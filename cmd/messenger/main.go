package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/wasa-chat-client/internal/logger"
	"bitbucket.org/sotavant/wasa-chat-client/internal/messenger"
	"bitbucket.org/sotavant/wasa-chat-client/internal/session"
	"bitbucket.org/sotavant/wasa-chat-client/internal/store"
)

func main() {
	parseFlags()
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	if err := logger.Initialize(flagLogLevel); err != nil {
		return err
	}

	logger.Log.Info("Starting messenger",
		zap.String("address", flagServerAddr), zap.Uint("chat", flagChatID))

	m := messenger.New(flagServerAddr, flagChatID, session.EnvSource{Key: "ACCESS_TOKEN"})

	ctx := context.Background()
	if err := m.LoadConversation(ctx); err != nil {
		logger.Log.Warn("cannot load conversation", zap.Error(err))
	}
	printMessages(m.Store().Messages())

	return repl(ctx, m)
}

func repl(ctx context.Context, m *messenger.Messenger) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("commands: send <text> | del <id> | comment <id> <text> | uncomment <id> | forward <id> <chat> | chats | list | quit")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch cmd {
		case "":
		case "quit":
			return nil
		case "list":
			printMessages(m.Store().Messages())
		case "chats":
			chats, err := m.Conversations(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			for _, chat := range chats {
				fmt.Printf("%d\t%s\n", chat.ID, chat.Name)
			}
		case "send":
			if err := m.SendMessage(ctx, rest); err != nil {
				fmt.Println("error:", err)
			}
		case "del":
			id, err := parseID(rest)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if err := m.DeleteMessage(ctx, id); err != nil {
				fmt.Println("error:", err)
			}
		case "comment":
			arg, text, _ := strings.Cut(rest, " ")
			id, err := parseID(arg)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if err := m.CommentMessage(ctx, id, text); err != nil {
				fmt.Println("error:", err)
			}
		case "uncomment":
			id, err := parseID(rest)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if err := m.UncommentMessage(ctx, id); err != nil {
				fmt.Println("error:", err)
			}
		case "forward":
			arg, chatName, _ := strings.Cut(rest, " ")
			id, err := parseID(arg)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if strings.TrimSpace(chatName) == "" {
				fmt.Println("Enter the chat name!")
				continue
			}
			m.Store().StageForward(id, chatName)
			if err := m.ForwardMessage(ctx, id); err != nil {
				// the server does not let us tell a missing chat from the rest
				fmt.Println("Chat doesnt exist!")
				continue
			}
			fmt.Println("Message forwarded!")
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad message id %q", s)
	}
	return uint(v), nil
}

func printMessages(msgs []store.Message) {
	for _, msg := range msgs {
		mark := " "
		if msg.IsMine {
			mark = "*"
		}
		fmt.Printf("%s %d\t%s", mark, msg.ID, msg.Content)
		if msg.Comment != nil {
			fmt.Printf("\t// %s", *msg.Comment)
		}
		fmt.Println()
	}
}
