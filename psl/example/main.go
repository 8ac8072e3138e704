package main

import (
	"fmt"

	"github.com/satishbabariya/pslcheck/psl"
	"github.com/satishbabariya/pslcheck/psl/validation"
)

func main() {
	schema := `datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

model Host {
  id      Int    @id
  address String @db.Inet
  note    String @db.Xml
  labels  Json   @db.Json

  @@index([address(ops: InetOps)], type: Gist)
  @@index([address(ops: NetworkOps)], type: Gist)
  @@index([labels], type: Gin)
  @@index([note])
}
`

	fmt.Println("📝 Validating schema...")
	source := psl.NewSourceFile("schema.prisma", schema)
	result := psl.Validate(source, validation.WithParallelism(2))

	if result.Connector != nil {
		fmt.Printf("Connector: %s\n", result.Connector.Name())
	}
	if result.Db != nil {
		for _, model := range result.Db.WalkModels() {
			fmt.Printf("Model %s has %d index(es)\n", model.Name(), len(model.Indexes()))
		}
	}
	fmt.Println()

	if !result.Diagnostics.HasErrors() {
		fmt.Println("✅ Schema is valid")
		return
	}

	fmt.Printf("❌ %d error(s):\n", len(result.Diagnostics.Errors()))
	for _, err := range result.Diagnostics.Errors() {
		fmt.Printf("   [%s] %s\n", err.Kind(), err.Message())
	}
	fmt.Println()
	fmt.Println(result.Diagnostics.ToPrettyString(source.Path, source.Data))
}
