// Command tes3dump reads an ESP/ESM/ESS file and prints its records and
// fields for inspection, the way cmd/n2kreader prints decoded PGNs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dreamwright/tes3codec"
	"github.com/dreamwright/tes3codec/compress"
	"github.com/dreamwright/tes3codec/record"
)

func main() {
	path := flag.String("file", "", "path to an ESP/ESM/ESS file to dump")
	codePage := flag.String("codepage", "western", "text code page: western or cyrillic")
	inflate := flag.Bool("inflate", false, "inflate Compressed (VCLR/VHGT/VNML/VTEX/WNAM/MAPD) fields for inspection")
	limit := flag.Int("limit", 0, "stop after N records (0 = no limit)")
	flag.Parse()

	if *path == "" {
		log.Fatal("# missing -file\n")
	}

	switch *codePage {
	case "western":
		tes3codec.SetCodePage(tes3codec.CodePageWestern)
	case "cyrillic":
		tes3codec.SetCodePage(tes3codec.CodePageCyrillic)
	default:
		log.Fatalf("# unknown code page %q\n", *codePage)
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	zc := compress.NewZlibCodec()

	count := 0
	for {
		if *limit > 0 && count >= *limit {
			break
		}
		rec, err := record.ReadRecord(f)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("# record %d: %v\n", count, err)
		}
		count++

		fmt.Printf("%s size=%d flags=%q fields=%d\n", rec.Header.Tag, rec.Header.Size, rec.Header.Flags.String(), len(rec.Fields))
		for _, fe := range rec.Fields {
			dumpField(zc, *inflate, fe)
		}
	}
	fmt.Printf("# done, %d records\n", count)
}

func dumpField(zc compress.Codec, inflate bool, fe record.FieldEntry) {
	bin, ok := fe.Value.(tes3codec.BinaryField)
	if ok && inflate {
		if out, err := zc.Decompress(bin.Data); err == nil {
			fmt.Printf("  %s Compressed -> %d bytes inflated\n", fe.Tag, len(out))
			return
		}
	}
	if ok {
		fmt.Printf("  %s Binary %d bytes\n", fe.Tag, len(bin.Data))
		return
	}
	fmt.Printf("  %s %+v\n", fe.Tag, fe.Value)
}
