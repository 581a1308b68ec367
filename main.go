package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	assistantx "github.com/edumentor/edumentor/agent/assistant"
	contractx "github.com/edumentor/edumentor/agent/contract"
	llmx "github.com/edumentor/edumentor/agent/llm"
	memoryx "github.com/edumentor/edumentor/agent/memory"
	retrieverx "github.com/edumentor/edumentor/agent/retriever"
	toolx "github.com/edumentor/edumentor/agent/tool"
	configx "github.com/edumentor/edumentor/pkg/config"
	_ "github.com/edumentor/edumentor/pkg/logger/autoload"
	serperx "github.com/edumentor/edumentor/pkg/serper"
)

type AppConfig struct {
	SessionID      string `split_words:"true" default:"cli"`
	UpstashEnabled bool   `split_words:"true" default:"false"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("APP")

	llmCfg := configx.MustNew[llmx.Config]("LLM")
	gateway, err := llmx.NewGateway(*llmCfg)
	if err != nil {
		panic(err)
	}

	retrieverCfg := configx.MustNew[retrieverx.Config]("RETRIEVER")
	retriever, err := retrieverx.NewHybridRetriever(*retrieverCfg, gateway)
	if err != nil {
		panic(err)
	}
	defer retriever.Close()

	serperCfg := configx.MustNew[serperx.Config]("SERPER")
	serperClient := serperx.MustNew(*serperCfg)

	var store contractx.MemoryStore
	if appCfg.UpstashEnabled {
		upstashCfg := configx.MustNew[memoryx.UpstashRedisConfig]("UPSTASH")
		store, err = memoryx.NewUpstashRedisStore(*upstashCfg)
		if err != nil {
			panic(err)
		}
	} else {
		store = memoryx.NewBufferStore()
	}

	progress := toolx.NewProgressStore()
	registry := toolx.MustNewRegistry(
		toolx.NewRAGSearch(retriever),
		toolx.NewWebSearch(serperClient),
		toolx.NewQuizGenerator(gateway, retriever),
		toolx.NewStudyPlanCreator(gateway, retriever, progress),
		toolx.NewFlashcardGenerator(gateway, retriever),
		toolx.NewConceptExplainer(gateway, retriever),
		toolx.NewProgressTracker(progress),
		toolx.NewSummaryGenerator(gateway, retriever),
		toolx.NewMindMapCreator(gateway, retriever),
	)

	agent, err := assistantx.New(store, gateway, retriever, registry, assistantx.Config{TopK: retrieverCfg.TopK})
	if err != nil {
		panic(err)
	}

	runChatLoop(agent, appCfg.SessionID)
}

func runChatLoop(agent *assistantx.Assistant, sessionID string) {
	fmt.Println("EduMentor sẵn sàng. Nhập câu hỏi (gõ 'exit' để thoát).")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return
		}

		result := agent.Answer(context.Background(), sessionID, line)
		fmt.Println(result.Response)
	}
}
