package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/parkerdavis/gmaps/internal/usage"
	"github.com/spf13/cobra"
)

var chatCommand = &cobra.Command{
	Use:   "chat",
	Short: "Chat with a model through the LLM gateway",
	Long: `Chat opens an interactive session against the gateway's OpenAI-compatible
endpoint. Each exchange is recorded in the usage ledger; spend accrues on the
gateway side per token, check it with "gmaps keyinfo".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gateway, err := gatewayClient()
		if err != nil {
			return err
		}

		model := cmd.Flag("model").Value.String()

		client := openai.NewClient(
			option.WithAPIKey(gateway.APIKey),
			option.WithBaseURL(gateway.OpenAIBaseURL()),
		)

		tracker, closeLedger, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeLedger()

		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s %s\n", styleBold.Render("Chatting with"), model)
		fmt.Fprintf(out, "%s\n\n", styleFaint.Render(`Type "exit" to quit.`))

		var messages []openai.ChatCompletionMessageParamUnion

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "‣ ")

			if !scanner.Scan() {
				break
			}

			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			if input == "exit" {
				break
			}

			messages = append(messages, openai.UserMessage(input))

			resp, err := client.Chat.Completions.New(cmd.Context(), openai.ChatCompletionNewParams{
				Model:    openai.ChatModel(model),
				Messages: messages,
			})
			if _, recErr := tracker.Record(cmd.Context(), usage.APIGatewayChat, err == nil, 0); recErr != nil {
				fmt.Fprintln(os.Stderr, recErr)
			}
			if err != nil {
				return fmt.Errorf("failed to create chat: %w", err)
			}

			content, err := chatContent(resp)
			if err != nil {
				return err
			}
			messages = append(messages, openai.AssistantMessage(content))

			rendered, err := renderMarkdown(strings.TrimRight(content, "\n"), renderWidth())
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)

			fmt.Fprintf(out, "%s\n", styleFaint.Render(fmt.Sprintf("%d tokens", resp.Usage.TotalTokens)))
		}

		return scanner.Err()
	},
}

// chatContent extracts the assistant message from a completion. Gateways can
// return a 200 with no choices, for example when a backing provider rejects
// the request.
func chatContent(resp *openai.ChatCompletion) (string, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("gateway returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func init() {
	chatCommand.Flags().String("model", "openai/gpt-4o-mini", "gateway model to chat with")

	rootCmd.AddCommand(chatCommand)
}
