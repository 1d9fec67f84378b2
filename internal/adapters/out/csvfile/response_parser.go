package csvfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"supplyorders/internal/core/domain/model/order"
)

// closeToken is the close-flag value marking an order complete.
const closeToken = "cpl"

// ResponseParser reads inbound partner response files from the inbox.
//
// File layout: a header line
// `orderId;orderSymbol;clientCompanyId;closeFlag;comment` followed by
// zero or more `productId;companyId;quantity;processedQuantity` lines.
// Quantities are decimal numbers in the partner's locale; both `.` and
// `,` are accepted as the decimal separator.
type ResponseParser struct {
	inboxPath string
}

// NewResponseParser creates a parser reading from the given inbox
// directory.
func NewResponseParser(inboxPath string) *ResponseParser {
	return &ResponseParser{inboxPath: inboxPath}
}

// Parse reads and parses the named response file into an order snapshot.
// The carried status is Processed when the close flag holds the complete
// token, otherwise it is derived from the filename suffix convention:
// _REG means Processing, _CPL means Processed, anything else Error.
func (p *ResponseParser) Parse(fileName string) (*order.Response, error) {
	path := filepath.Join(p.inboxPath, fileName)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open response file %s: %w", path, err)
	}
	defer file.Close()

	response := &order.Response{FileName: fileName}

	closeFlag := ""
	headerParsed := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ";")

		if !headerParsed {
			if len(parts) < 5 {
				return nil, fmt.Errorf("response file %s: malformed header %q", fileName, line)
			}
			response.OrderID, err = strconv.ParseInt(parts[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("response file %s: invalid order id %q: %w", fileName, parts[0], err)
			}
			response.Symbol = parts[1]
			response.ClientCompanyID, err = strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("response file %s: invalid client company id %q: %w", fileName, parts[2], err)
			}
			closeFlag = parts[3]
			response.Comment = parts[4]
			headerParsed = true
			continue
		}

		if len(parts) < 4 {
			return nil, fmt.Errorf("response file %s: malformed position %q", fileName, line)
		}
		position := order.ResponsePosition{}
		position.ProductID, err = strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("response file %s: invalid product id %q: %w", fileName, parts[0], err)
		}
		position.CompanyID, err = strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("response file %s: invalid company id %q: %w", fileName, parts[1], err)
		}
		position.Quantity = parseQuantity(parts[2])
		position.ProcessedQuantity = parseQuantity(parts[3])
		response.Positions = append(response.Positions, position)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read response file %s: %w", path, err)
	}
	if !headerParsed {
		return nil, fmt.Errorf("response file %s: no header line", fileName)
	}

	if strings.EqualFold(strings.TrimSpace(closeFlag), closeToken) {
		response.Status = order.Processed
	} else {
		response.Status = statusFromFileName(fileName)
	}

	return response, nil
}

// parseQuantity parses a decimal quantity, tolerating a comma decimal
// separator, and truncates it to a whole number. An unparseable value
// degrades to zero, matching the partner feed's loose numeric fields.
func parseQuantity(raw string) int {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}
	return int(value)
}

func statusFromFileName(fileName string) order.Status {
	switch {
	case strings.Contains(fileName, "_REG.csv"):
		return order.Processing
	case strings.Contains(fileName, "_CPL.csv"):
		return order.Processed
	default:
		return order.Error
	}
}
