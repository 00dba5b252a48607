package task

//go:generate go tool mockgen -destination "mock_memory_test.go" -package $GOPACKAGE -write_package_comment=false github.com/ezrec/minisys/task Memory
//go:generate go tool mockgen -destination "mock_card_test.go" -package $GOPACKAGE -write_package_comment=false github.com/ezrec/minisys/card Card
