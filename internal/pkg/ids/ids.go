package ids

import (
	"log"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

var node *snowflake.Node

func init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("❌ Failed to initialize id node: %v", err)
	}
}

// NewRecordID returns a sortable unique id for server-assigned records
func NewRecordID() string {
	return node.Generate().String()
}

// NewLocalID returns a random id for records created in the local store
func NewLocalID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}
