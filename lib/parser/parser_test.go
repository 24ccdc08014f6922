package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/schemaforge/lib/ir"
)

func TestParseSource_CTypedefStruct(t *testing.T) {
	source := `
typedef struct {
    int id;
    char name[50];
} Person;
`
	tables := NewParser().ParseSource(source, ir.DialectC)
	require.Len(t, tables, 1)

	table := tables[0]
	assert.Equal(t, "person", table.Name)
	assert.Equal(t, "Generated from C struct Person", table.Description)
	require.Len(t, table.Columns, 2)
	assert.Equal(t, "id", table.Columns[0].Name)
	assert.Equal(t, "INT", table.Columns[0].Type.Name)
	// the minimal tokenizer keeps the bare "char" type token; the array
	// brackets are stripped from the name only
	assert.Equal(t, "name", table.Columns[1].Name)
	assert.Equal(t, "TEXT", table.Columns[1].Type.Name)
}

func TestParseSource_CPointerAndCommentLines(t *testing.T) {
	source := `
// User table structure
typedef struct {
    int user_id;
    char* username;
    char *email;
    /* age in years */
    int age;
    bool is_active;
} User;
`
	tables := NewParser().ParseSource(source, ir.DialectC)
	require.Len(t, tables, 1)

	table := tables[0]
	assert.Equal(t, "user", table.Name)
	require.Len(t, table.Columns, 5)
	assert.Equal(t, "username", table.Columns[1].Name)
	assert.Equal(t, ir.DataType{Name: "VARCHAR", Size: 255, Nullable: true}, table.Columns[1].Type)
	// "char *email" tokenizes as type char, name *email
	assert.Equal(t, "email", table.Columns[2].Name)
	assert.Equal(t, "TEXT", table.Columns[2].Type.Name)
	assert.Equal(t, "BOOLEAN", table.Columns[4].Type.Name)
}

func TestParseSource_SingleLineDeclaration(t *testing.T) {
	source := "typedef struct { int id; char* email; } Contact;\n"
	tables := NewParser().ParseSource(source, ir.DialectC)
	require.Len(t, tables, 1)

	table := tables[0]
	assert.Equal(t, "contact", table.Name)
	require.Len(t, table.Columns, 2)
	assert.Equal(t, "id", table.Columns[0].Name)
	assert.Equal(t, "INT", table.Columns[0].Type.Name)
	assert.Equal(t, "email", table.Columns[1].Name)
	assert.Equal(t, "VARCHAR", table.Columns[1].Type.Name)
}

func TestParseSource_MultipleStructsPreserveOrder(t *testing.T) {
	source := `
typedef struct {
    int product_id;
    double price;
} Product;

typedef struct {
    int order_id;
    int quantity;
} Order;
`
	tables := NewParser().ParseSource(source, ir.DialectC)
	require.Len(t, tables, 2)
	assert.Equal(t, "product", tables[0].Name)
	assert.Equal(t, "order", tables[1].Name)
}

func TestParseSource_CppClassSkipsMethodsAndConstants(t *testing.T) {
	source := `
class Account {
public:
    int id;
    std::string owner;
    double balance;

    void deposit(double amount);
    double getBalance() const { return balance; }

    static int instanceCount;
    const int version = 2;

private:
    bool frozen;
};
`
	tables := NewParser().ParseSource(source, ir.DialectCpp)
	require.Len(t, tables, 1)

	table := tables[0]
	assert.Equal(t, "account", table.Name)
	assert.Equal(t, "Generated from C++ class Account", table.Description)

	names := []string{}
	for _, col := range table.Columns {
		names = append(names, col.Name)
	}
	assert.Equal(t, []string{"id", "owner", "balance", "frozen"}, names)
	assert.Equal(t, ir.DataType{Name: "VARCHAR", Size: 255, Nullable: true}, table.Columns[1].Type)
}

func TestParseSource_CppNestedBracesStayInsideBlock(t *testing.T) {
	// the depth scanner must not close the class at the method body's brace
	source := `
class Outer {
public:
    int id;
    void doThing() {
        if (id > 0) { id = 0; }
    }
    std::string name;
};

class Second {
public:
    int x;
};
`
	tables := NewParser().ParseSource(source, ir.DialectCpp)
	require.Len(t, tables, 2)
	assert.Equal(t, "outer", tables[0].Name)
	require.Len(t, tables[0].Columns, 2)
	assert.Equal(t, "id", tables[0].Columns[0].Name)
	assert.Equal(t, "name", tables[0].Columns[1].Name)
	assert.Equal(t, "second", tables[1].Name)
}

func TestParseSource_MethodLocalsAreNotFields(t *testing.T) {
	// a local declaration inside a method body passes every line filter, so
	// only the depth gate keeps it out of the columns
	source := `
class Session {
public:
    int id;
    void reset() {
        int attempts = 0;
        attempts++;
    }
    bool active;
};
`
	tables := NewParser().ParseSource(source, ir.DialectCpp)
	require.Len(t, tables, 1)

	names := []string{}
	for _, col := range tables[0].Columns {
		names = append(names, col.Name)
	}
	assert.Equal(t, []string{"id", "active"}, names)
}

func TestParseSource_JavaMethodLocalsAreNotFields(t *testing.T) {
	source := `
public class Retry {
    private int limit;

    public void run() {
        int attempts = 0;
        long started = 0;
    }
}
`
	tables := NewParser().ParseSource(source, ir.DialectJava)
	require.Len(t, tables, 1)
	require.Len(t, tables[0].Columns, 1)
	assert.Equal(t, "limit", tables[0].Columns[0].Name)
}

func TestParseSource_CppForwardDeclarationSkipped(t *testing.T) {
	source := `
class Forward;

class Real {
public:
    int id;
};
`
	tables := NewParser().ParseSource(source, ir.DialectCpp)
	require.Len(t, tables, 1)
	assert.Equal(t, "real", tables[0].Name)
}

func TestParseSource_JavaClassStripsModifiers(t *testing.T) {
	source := `
public class Customer {
    private int customerId;
    private String name;
    protected boolean active;
    private static final int MAX_NAME = 100;
    private BigDecimal creditLimit;

    public Customer(int customerId) {
        this.customerId = customerId;
    }

    public String getName() {
        return name;
    }
}
`
	tables := NewParser().ParseSource(source, ir.DialectJava)
	require.Len(t, tables, 1)

	table := tables[0]
	assert.Equal(t, "customer", table.Name)
	assert.Equal(t, "Generated from Java class Customer", table.Description)

	names := []string{}
	for _, col := range table.Columns {
		names = append(names, col.Name)
	}
	// static final members lose their modifiers and parse as fields
	assert.Equal(t, []string{"customerId", "name", "active", "MAX_NAME", "creditLimit"}, names)
	assert.Equal(t, "DECIMAL", table.Columns[4].Type.Name)
}

func TestParseSource_InitializerTailStripped(t *testing.T) {
	source := `
public class Defaults {
    private int count = 0;
    private String label = "none";
}
`
	tables := NewParser().ParseSource(source, ir.DialectJava)
	require.Len(t, tables, 1)
	require.Len(t, tables[0].Columns, 2)
	assert.Equal(t, "count", tables[0].Columns[0].Name)
	assert.Equal(t, "label", tables[0].Columns[1].Name)
}

func TestParseSource_EmptyDeclarationDropped(t *testing.T) {
	source := `
public class Marker {
}

public class Useful {
    private int id;
}
`
	tables := NewParser().ParseSource(source, ir.DialectJava)
	require.Len(t, tables, 1)
	assert.Equal(t, "useful", tables[0].Name)
}

func TestParseSource_NoBlocksYieldsNoTablesNoError(t *testing.T) {
	tables := NewParser().ParseSource("int main() { return 0; }\n", ir.DialectC)
	assert.Empty(t, tables)
}

func TestParseFile_ReadFailureReportsPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.h")
	tables, err := NewParser().ParseFile(missing, ir.DialectC)
	assert.Nil(t, tables)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), missing)
	}
}

func TestParseFile_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.h")
	require.NoError(t, os.WriteFile(path, []byte("typedef struct { int id; } Thing;\n"), 0644))

	tables, err := NewParser().ParseFile(path, ir.DialectC)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "thing", tables[0].Name)
}
