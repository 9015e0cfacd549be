package common

import (
	"os"

	"github.com/bwmarrin/snowflake"
)

var snowflakeNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(int64(os.Getpid() % 1024))
	if err != nil {
		panic(err)
	}
	snowflakeNode = node
}

// UUIDint64 returns a process-unique, time-ordered int64 identifier.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// UUID returns the string form of a snowflake identifier.
func UUID() string {
	return snowflakeNode.Generate().String()
}
