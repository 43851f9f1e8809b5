// ABOUTME: Graphviz export of the client work breakdown
// ABOUTME: Renders client → objective → task graphs as DOT
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"consultorml/models"
	"consultorml/store"
)

type GraphGenerator struct {
	store *store.Store
}

func NewGraphGenerator(st *store.Store) *GraphGenerator {
	return &GraphGenerator{store: st}
}

// GenerateClientGraph renders one client's objectives and tasks, or
// the whole portfolio when clientID is empty.
func (g *GraphGenerator) GenerateClientGraph(clientID string) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.LRRank)

	var clients []models.Client
	if clientID != "" {
		client, err := g.store.GetClient(clientID)
		if err != nil {
			return "", fmt.Errorf("client not found: %s", clientID)
		}
		clients = []models.Client{*client}
	} else {
		clients, err = g.store.ListClients()
		if err != nil {
			return "", fmt.Errorf("failed to fetch clients: %w", err)
		}
	}

	for _, client := range clients {
		clientNode, err := graph.CreateNodeByName(fmt.Sprintf("%s\n%s", client.Name, client.Phase))
		if err != nil {
			return "", fmt.Errorf("failed to create node: %w", err)
		}
		clientNode.SetShape("box")

		objectives, err := g.store.ListObjectivesByClient(client.ID)
		if err != nil {
			return "", fmt.Errorf("failed to fetch objectives: %w", err)
		}

		objectiveNodes := make(map[string]*cgraph.Node)
		for _, objective := range objectives {
			node, err := graph.CreateNodeByName(fmt.Sprintf("%s\n[%s]", objective.Title, objective.Status))
			if err != nil {
				return "", fmt.Errorf("failed to create node: %w", err)
			}
			objectiveNodes[objective.ID] = node
			_, _ = graph.CreateEdgeByName("", clientNode, node)
		}

		tasks, err := g.store.ListTasksByClient(client.ID)
		if err != nil {
			return "", fmt.Errorf("failed to fetch tasks: %w", err)
		}

		for _, task := range tasks {
			node, err := graph.CreateNodeByName(fmt.Sprintf("%s\n[%s]", task.Desc, task.Status))
			if err != nil {
				return "", fmt.Errorf("failed to create node: %w", err)
			}

			parent := clientNode
			if objNode, ok := objectiveNodes[task.ObjectiveID]; ok {
				parent = objNode
			}
			edge, _ := graph.CreateEdgeByName("", parent, node)
			if task.Responsible != "" && edge != nil {
				edge.SetLabel(task.Responsible)
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}
