package buildfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/schemaforge/schemaforge/lib/ir"
	"github.com/schemaforge/schemaforge/lib/util"
)

const cMainSrc = `#include "main.h"

int main(int argc, char *argv[]) {
    printf("Hello, World!\n");
    return 0;
}
`

const cMainHeader = `#ifndef MAIN_H
#define MAIN_H

#include <stdio.h>
#include <stdlib.h>

#endif // MAIN_H
`

const cppMainSrc = `#include "main.hpp"

int main(int argc, char* argv[]) {
    std::cout << "Hello, World!" << std::endl;
    return 0;
}
`

const cppMainHeader = `#ifndef MAIN_HPP
#define MAIN_HPP

#include <iostream>
#include <string>

#endif // MAIN_HPP
`

const javaMainSrc = `public class %s {
    public static void main(String[] args) {
        System.out.println("Hello, World!");
    }
}
`

// ScaffoldProject creates dir and populates it with a language-appropriate
// hello-world source pair and a README. When autoCreate is false, the
// directory must already exist.
func ScaffoldProject(dir string, dialect ir.SourceDialect, autoCreate bool) error {
	if !autoCreate && !util.IsDir(dir) {
		return errors.Errorf("directory %s does not exist and auto-create is disabled", dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	files := map[string]string{}
	switch dialect {
	case ir.DialectC:
		files["main.c"] = cMainSrc
		files["main.h"] = cMainHeader
	case ir.DialectCpp:
		files["main.cpp"] = cppMainSrc
		files["main.hpp"] = cppMainHeader
	case ir.DialectJava:
		files[filepath.Base(dir)+".java"] = fmt.Sprintf(javaMainSrc, filepath.Base(dir))
	default:
		return errors.Errorf("unknown source dialect %q", dialect)
	}
	files["README.md"] = fmt.Sprintf("# %s\nA new %s project.\n", filepath.Base(dir), dialect.DisplayName())

	for name, content := range files {
		if err := util.WriteFile(content, filepath.Join(dir, name)); err != nil {
			return errors.Wrapf(err, "writing %s", name)
		}
	}
	return nil
}
